package models

type UmkmPost struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	Kategori   string `json:"kategori"`
	Judul      string `json:"judul"`
	Alamat     string `json:"alamat"`
	Image      string `json:"image"`
	IsApproved bool   `json:"isApproved"`
}
