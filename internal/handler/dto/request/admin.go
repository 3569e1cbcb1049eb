package request

type AttendanceRequest struct {
	Events    []int `json:"events"`
	Workshops []int `json:"workshops"`
}

type ReassignWorkshopRequest struct {
	FromWorkshopID int `json:"fromWorkshopId" binding:"required"`
	ToWorkshopID   int `json:"toWorkshopId" binding:"required"`
}

type NotesRequest struct {
	Notes   string `json:"notes"`
	Flagged bool   `json:"flagged"`
}
