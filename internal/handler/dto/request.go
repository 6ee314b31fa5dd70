package dto

type CreateSlotRequest struct {
	OwnerID  string `json:"owner_id" binding:"required,uuid"`
	StartAt  string `json:"start_at" binding:"required"`
	EndAt    string `json:"end_at" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type BookRequest struct {
	BookerID string `json:"booker_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=teacher student admin"`
}
