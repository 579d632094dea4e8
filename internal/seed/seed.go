// Package seed carries the static startup data set: the pilot plant's
// users, sites, lines, queue snapshot, settings and UI translations.
// Queue due times are relative offsets from load time so the queue always
// shows a realistic mix of early, due and late work.
package seed

import (
	"time"

	"qc-backend/internal/models"
	"qc-backend/internal/timeutil"
)

func Users() []*models.User {
	return []*models.User{
		{ID: "user-1", Name: "Aisyah", Role: "inspector", Avatar: "👩🏻‍🔬"},
		{ID: "user-2", Name: "Lim", Role: "qc-lead", Avatar: "👨🏻‍💼"},
		{ID: "user-3", Name: "Ravi", Role: "supervisor", Avatar: "👨🏾‍💼"},
		{ID: "user-4", Name: "Jay", Role: "manager", Avatar: "👨🏻‍💼"},
		{ID: "user-5", Name: "Nur", Role: "qa", Avatar: "👩🏻‍💼"},
	}
}

func Sites() []*models.Site {
	return []*models.Site{
		{ID: "site-1", Name: "Taman University", Location: "Skudai"},
		{ID: "site-2", Name: "Pontian", Location: "Pontian"},
		{ID: "site-3", Name: "Pasir Gudang", Location: "Pasir Gudang"},
	}
}

func Lines() []*models.Line {
	return []*models.Line{
		{ID: "line-1", Name: "L1", SiteID: "site-1"},
		{ID: "line-2", Name: "L2", SiteID: "site-1"},
		{ID: "line-3", Name: "L3", SiteID: "site-2"},
	}
}

// QueueItems builds the startup queue relative to now. The last item comes
// up pre-locked by Aisyah, matching the state the pilot always demos from.
func QueueItems(now time.Time) []*models.QueueItem {
	offset := func(minutes int) time.Time {
		return now.Add(time.Duration(minutes) * time.Minute)
	}

	lockedAt := offset(-10)
	return []*models.QueueItem{
		{
			ID: "queue-1", DueAt: offset(-5),
			ItemCode: "PET-COOK-1L", ItemName: "1L PET Cooking Oil Bottle",
			Line: "L1", Machine: "ENGEL-220T", Mold: "MOLD-12", WorkOrder: "WO-2025-081",
			Priority: models.PriorityComplaint,
		},
		{
			ID: "queue-2", DueAt: offset(2),
			ItemCode: "HDPE-COOK-5L", ItemName: "5L HDPE Cooking Oil Bottle",
			Line: "L2", Machine: "NISSEI-180T", Mold: "MOLD-7", WorkOrder: "WO-2025-094",
			Priority: models.PriorityFirstArticle,
		},
		{
			ID: "queue-3", DueAt: offset(15),
			ItemCode: "PET-COOK-1L", ItemName: "1L PET Cooking Oil Bottle",
			Line: "L1", Machine: "ENGEL-220T", Mold: "MOLD-12", WorkOrder: "WO-2025-081",
			Priority: models.PriorityChangeover,
		},
		{
			ID: "queue-4", DueAt: offset(25),
			ItemCode: "HDPE-COOK-5L", ItemName: "5L HDPE Cooking Oil Bottle",
			Line: "L3", Machine: "ENGEL-300T", Mold: "MOLD-7", WorkOrder: "WO-2025-094",
			Priority: models.PriorityRoutine,
		},
		{
			ID: "queue-5", DueAt: offset(30),
			ItemCode: "PET-COOK-1L", ItemName: "1L PET Cooking Oil Bottle",
			Line: "L2", Machine: "NISSEI-180T", Mold: "MOLD-12", WorkOrder: "WO-2025-081",
			Priority: models.PriorityRoutine,
			LockedBy: &models.LockInfo{
				UserID: "user-1", UserName: "Aisyah", Avatar: "👩🏻‍🔬", LockedAt: lockedAt,
			},
		},
	}
}

func Settings() []*models.SystemSetting {
	now := timeutil.Now()
	return []*models.SystemSetting{
		{SettingKey: "default_language", SettingValue: "en", Description: "UI language served to new devices", UpdatedAt: now},
		{SettingKey: "site_id", SettingValue: "site-1", Description: "Active plant site", UpdatedAt: now},
		{SettingKey: "app_title", SettingValue: "Rui Sin QC", Description: "Display title", UpdatedAt: now},
	}
}

// Translations holds the en/zh/ms string tables the presentation layer
// resolves keys against. Missing keys fall back to the raw key.
func Translations() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"app.title":         "Rui Sin QC",
			"nav.queue":         "Queue",
			"nav.inspect":       "Inspect",
			"nav.dropTest":      "Drop Test",
			"nav.ncHolds":       "NC & Holds",
			"nav.reports":       "Reports",
			"nav.admin":         "Admin",
			"nav.setup":         "Setup",
			"label.dueAt":       "Due at",
			"label.serverTime":  "Server time",
			"action.doNext":     "Do next",
			"action.view":       "View",
			"state.lockedBy":    "Locked by {name}",
			"status.early":      "Early",
			"status.due":        "Due",
			"status.late":       "Late",
			"status.locked":     "Locked",
			"priority.complaint":    "Complaint",
			"priority.firstArticle": "First Article",
			"priority.changeover":   "Changeover",
			"priority.routine":      "Routine",
			"filter.all":        "All",
			"queue.missedCount": "Missed ({count})",
			"queue.nextHour":    "Next 60 minutes",
			"scan.placeholder":  "Scan or enter barcode...",
			"offline.badge":     "Offline",
			"sync.action":       "Sync ({count})",
		},
		"zh": {
			"app.title":         "瑞信质检",
			"nav.queue":         "队列",
			"nav.inspect":       "检查",
			"nav.dropTest":      "跌落测试",
			"nav.ncHolds":       "不合格品与冻结",
			"nav.reports":       "报告",
			"nav.admin":         "管理",
			"nav.setup":         "设置",
			"label.dueAt":       "到期时间",
			"label.serverTime":  "服务器时间",
			"action.doNext":     "下一项",
			"action.view":       "查看",
			"state.lockedBy":    "由{name}锁定",
			"status.early":      "提前",
			"status.due":        "到期",
			"status.late":       "逾期",
			"status.locked":     "锁定",
			"priority.complaint":    "投诉",
			"priority.firstArticle": "首件",
			"priority.changeover":   "换线",
			"priority.routine":      "常规",
			"filter.all":        "全部",
			"queue.missedCount": "错过 ({count})",
			"queue.nextHour":    "接下来60分钟",
			"scan.placeholder":  "扫描或输入条码...",
			"offline.badge":     "离线",
			"sync.action":       "同步 ({count})",
		},
		"ms": {
			"app.title":         "Rui Sin QC",
			"nav.queue":         "Barisan",
			"nav.inspect":       "Periksa",
			"nav.dropTest":      "Ujian Jatuh",
			"nav.ncHolds":       "NC & Tahan",
			"nav.reports":       "Laporan",
			"nav.admin":         "Admin",
			"nav.setup":         "Sediaan",
			"label.dueAt":       "Tamat pada",
			"label.serverTime":  "Masa pelayan",
			"action.doNext":     "Buat seterusnya",
			"action.view":       "Lihat",
			"state.lockedBy":    "Dikunci oleh {name}",
			"status.early":      "Awal",
			"status.due":        "Tamat",
			"status.late":       "Lewat",
			"status.locked":     "Dikunci",
			"priority.complaint":    "Aduan",
			"priority.firstArticle": "Artikel Pertama",
			"priority.changeover":   "Tukar Talian",
			"priority.routine":      "Rutin",
			"filter.all":        "Semua",
			"queue.missedCount": "Terlepas ({count})",
			"queue.nextHour":    "60 minit akan datang",
			"scan.placeholder":  "Imbas atau masukkan kod bar...",
			"offline.badge":     "Luar talian",
			"sync.action":       "Segerak ({count})",
		},
	}
}
