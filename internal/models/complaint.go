package models

// StatusAwaitingResponse is the workflow label a complaint carries until an
// admin responds to it.
const StatusAwaitingResponse = "Menunggu Respon"

type Complaint struct {
	ID         int    `json:"idcomplaint"`
	Text       string `json:"text"`
	Alamat     string `json:"alamat"`
	ImageURL   string `json:"image_url"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	Keterangan string `json:"keterangan,omitempty"`
	UserID     int    `json:"iduser"`
	Username   string `json:"username,omitempty"`
}

type ReportData struct {
	TotalReports     int `json:"totalReports"`
	RespondedReports int `json:"respondedReports"`
}
