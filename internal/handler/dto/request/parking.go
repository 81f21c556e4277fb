package request

type ParkRequest struct {
	VehicleID   string `json:"vehicle_id" binding:"required,max=255"`
	VehicleType string `json:"vehicle_type" binding:"required,oneof=motorcycle car truck"`
}

type LeaveRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required,max=255"`
}

type ParkingAvailabilityQuery struct {
	Vehicle string `form:"vehicle" binding:"required,oneof=motorcycle car truck"`
}
