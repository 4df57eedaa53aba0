package models

type Vehicle struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	VehicleName   *string `json:"vehicle_name" gorm:"type:varchar(250)"`
	CargoCapacity *int64  `json:"cargo_capacity"`
	Consumables   *string `json:"consumables" gorm:"type:varchar(250)"`
	CostInCredits *int64  `json:"cost_in_credits"`
	CrewCapacity  *int64  `json:"crew_capacity"`
	Manufacturer  *string `json:"manufacturer" gorm:"type:varchar(250)"`
}
