package models

type Planet struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	PlanetName     *string `json:"planet_name" gorm:"type:varchar(250)"`
	Climate        *string `json:"climate" gorm:"type:varchar(250)"`
	Population     *int64  `json:"population"`
	OrbitalPeriod  *int64  `json:"orbital_period"`
	RotationPeriod *int64  `json:"rotation_period"`
	Diameter       *int64  `json:"diameter"`
}
