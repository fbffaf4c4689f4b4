package dtos

type PreferenceUpdateRequest struct {
	DefaultFollowUpDays int    `json:"default_follow_up_days" binding:"required"`
	DefaultStatus       string `json:"default_status" binding:"required"`
	Theme               string `json:"theme" binding:"required"`
}
