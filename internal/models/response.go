package models

type ComplaintResponse struct {
	ID            int    `json:"idresponse"`
	ComplaintID   int    `json:"complaint_id"`
	Text          string `json:"text"`
	ImageURL      string `json:"image_url"`
	DateResponses string `json:"date_responses"`
}
