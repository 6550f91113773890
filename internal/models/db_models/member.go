package db_models

// Member is a known person used for prefill and submission attribution.
// Phone is stored as bare 10 digits so lookups match any input formatting.
type Member struct {
	BaseModel
	Name    string
	Email   string `gorm:"index"`
	Phone   string `gorm:"index"`
	ZipCode string
}
