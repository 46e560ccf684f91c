package hallservice

// Hall данные зала из сервиса управления залами
type Hall struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Sections   []Section `json:"sections"`
	ManagerIDs []int64   `json:"managerIds"`
	IsActive   bool      `json:"isActive"`
}

// Section секция зала (мужская/женская часть, отдельный этаж и т.п.)
type Section struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// HasSection проверяет, что секция принадлежит залу
func (h *Hall) HasSection(sectionID int64) bool {
	for _, section := range h.Sections {
		if section.ID == sectionID {
			return true
		}
	}
	return false
}

// IsManager проверяет, что пользователь является менеджером зала
func (h *Hall) IsManager(userID int64) bool {
	for _, managerID := range h.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}

// EventType тип мероприятия из справочника сервиса управления залами
type EventType struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
