package db_models

type City struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:varchar(200)"`

	PointsOfInterest []PointOfInterest `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (City) TableName() string {
	return "cities"
}
