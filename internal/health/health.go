package health

import (
	"qc-backend/internal/repositories"
	"qc-backend/internal/specs"
)

type HealthChecker struct {
	table     *specs.Table
	queueRepo *repositories.QueueRepository
}

type HealthStatus struct {
	Status string      `json:"status"`
	Specs  SpecsHealth `json:"specs"`
	Queue  QueueHealth `json:"queue"`
}

type SpecsHealth struct {
	Status    string `json:"status"`
	ItemCodes int    `json:"item_codes"`
}

type QueueHealth struct {
	Status      string `json:"status"`
	Items       int    `json:"items"`
	ActiveLocks int    `json:"active_locks"`
}

func NewHealthChecker(table *specs.Table, queueRepo *repositories.QueueRepository) *HealthChecker {
	return &HealthChecker{table: table, queueRepo: queueRepo}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	specsHealth := SpecsHealth{Status: "healthy", ItemCodes: len(h.table.ItemCodes())}
	if specsHealth.ItemCodes == 0 {
		specsHealth.Status = "unhealthy"
	}

	queueHealth := QueueHealth{
		Status:      "healthy",
		Items:       len(h.queueRepo.List()),
		ActiveLocks: h.queueRepo.ActiveLocks(),
	}

	status := "healthy"
	if specsHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status: status,
		Specs:  specsHealth,
		Queue:  queueHealth,
	}
}
