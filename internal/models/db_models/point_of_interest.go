package db_models

type PointOfInterest struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:varchar(200)"`
	CityID      int    `gorm:"index;not null"`
}

func (PointOfInterest) TableName() string {
	return "points_of_interest"
}
