package models

type Character struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	CharacterName *string `json:"character_name" gorm:"type:varchar(250)"`
	EyeColor      *string `json:"eye_color" gorm:"type:varchar(250)"`
	Gender        *string `json:"gender" gorm:"type:varchar(250)"`
	HairColor     *string `json:"hair_color" gorm:"type:varchar(250)"`
	Height        *int64  `json:"height"`
	SkinColor     *string `json:"skin_color" gorm:"type:varchar(250)"`
}
