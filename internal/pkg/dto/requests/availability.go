package requests

type Slot struct {
	Start string `json:"start" validate:"required,clocktime"`
	End   string `json:"end" validate:"required,clocktime"`
}

type CopyDay struct {
	Targets []string `json:"targets" validate:"required,min=1,dive,weekday"`
}

type SetDayAvailable struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

type SetTimeGap struct {
	TimeGap *int `json:"timeGap" validate:"required,gte=0,lte=120"`
}
