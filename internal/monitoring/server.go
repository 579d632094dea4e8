package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
	"qc-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Server is the ops monitor for the QC floor: it fans queue events out to
// websocket clients (wall dashboards, supervisor tablets) and serves a
// stats endpoint combining host metrics with live queue state.
type Server struct {
	port        int
	queueRepo   *repositories.QueueRepository
	queue       *services.QueueService
	holdRepo    *repositories.HoldRepository
	inspections *repositories.InspectionRepository
	requestLogs *repositories.RequestLogRepository

	startedAt  time.Time
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan services.QueueEvent

	eventsMux sync.RWMutex
	events    []services.QueueEvent
}

type Stats struct {
	Status           string                  `json:"status"`
	Uptime           string                  `json:"uptime"`
	CPUPercent       float64                 `json:"cpu_percent"`
	MemoryPercent    float64                 `json:"memory_percent"`
	MemoryUsed       string                  `json:"memory_used"`
	MemoryTotal      string                  `json:"memory_total"`
	DiskPercent      float64                 `json:"disk_percent"`
	QueueItems       int                     `json:"queue_items"`
	MissedItems      int                     `json:"missed_items"`
	ActiveLocks      int                     `json:"active_locks"`
	ActiveHolds      int                     `json:"active_holds"`
	Inspections      int                     `json:"inspections"`
	ConnectedClients int                     `json:"connected_clients"`
	RequestsLogged   int                     `json:"requests_logged"`
	RecentRequests   []*models.APIRequestLog `json:"recent_requests"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewServer(
	port int,
	queueRepo *repositories.QueueRepository,
	queue *services.QueueService,
	holdRepo *repositories.HoldRepository,
	inspections *repositories.InspectionRepository,
	requestLogs *repositories.RequestLogRepository,
) *Server {
	return &Server{
		port:        port,
		queueRepo:   queueRepo,
		queue:       queue,
		holdRepo:    holdRepo,
		inspections: inspections,
		requestLogs: requestLogs,
		startedAt:   time.Now(),
		clients:     make(map[*websocket.Conn]bool),
		broadcast:   make(chan services.QueueEvent, 100),
	}
}

// Publish implements services.EventPublisher. It never blocks the caller;
// when the broadcast buffer is full the event is only kept in the recent
// event list.
func (s *Server) Publish(event services.QueueEvent) {
	s.eventsMux.Lock()
	s.events = append(s.events, event)
	if len(s.events) > 200 {
		s.events = s.events[len(s.events)-200:]
	}
	s.eventsMux.Unlock()

	select {
	case s.broadcast <- event:
	default:
	}
}

func (s *Server) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/api/stats", s.getStats).Methods("GET")
	r.HandleFunc("/api/events", s.getEvents).Methods("GET")

	// WebSocket for real-time updates
	r.HandleFunc("/ws", s.handleWebSocket)

	go s.handleBroadcast()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("[Monitoring] dashboard running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats := s.collectStats()
	writeJSON(w, stats)
}

func (s *Server) getEvents(w http.ResponseWriter, r *http.Request) {
	s.eventsMux.RLock()
	events := make([]services.QueueEvent, len(s.events))
	copy(events, s.events)
	s.eventsMux.RUnlock()

	writeJSON(w, events)
}

func (s *Server) collectStats() Stats {
	cpuPercents, _ := cpu.Percent(0, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	s.clientsMux.Lock()
	connected := len(s.clients)
	s.clientsMux.Unlock()

	active, _ := s.holdRepo.CountByStatus()

	stats := Stats{
		Status:           "healthy",
		Uptime:           formatUptime(int(time.Since(s.startedAt).Seconds())),
		CPUPercent:       cpuPercent,
		QueueItems:       len(s.queueRepo.List()),
		MissedItems:      s.queue.MissedCount(),
		ActiveLocks:      s.queueRepo.ActiveLocks(),
		ActiveHolds:      active,
		Inspections:      len(s.inspections.List()),
		ConnectedClients: connected,
		RequestsLogged:   s.requestLogs.Count(),
		RecentRequests:   s.requestLogs.Recent(20),
	}

	if memStats != nil {
		stats.MemoryPercent = memStats.UsedPercent
		stats.MemoryUsed = formatBytes(memStats.Used)
		stats.MemoryTotal = formatBytes(memStats.Total)
	}
	if diskStats != nil {
		stats.DiskPercent = diskStats.UsedPercent
	}

	return stats
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	s.clientsMux.Lock()
	s.clients[conn] = true
	s.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			s.clientsMux.Lock()
			delete(s.clients, conn)
			s.clientsMux.Unlock()
			break
		}
	}
}

func (s *Server) handleBroadcast() {
	for event := range s.broadcast {
		s.clientsMux.Lock()
		for conn := range s.clients {
			if err := conn.WriteJSON(event); err != nil {
				conn.Close()
				delete(s.clients, conn)
			}
		}
		s.clientsMux.Unlock()
	}
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
