package models

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type PassengerDetails struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Age             int    `json:"age,omitempty"`
	Gender          string `json:"gender,omitempty"`
	BoardingPointID int64  `json:"boarding_point"`
	DroppingPointID int64  `json:"dropping_point"`
}
