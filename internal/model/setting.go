package model

type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;size:100"`
	Value string `json:"value"`
	Desc  string `json:"desc"`
}
