package vehicle

type CreateVehicleRequest struct {
	Name    string  `json:"name" binding:"required"`
	PlateNo *string `json:"plate_no"`
}

type UpdateVehicleRequest struct {
	Name     string  `json:"name" binding:"required"`
	PlateNo  *string `json:"plate_no"`
	IsActive *bool   `json:"is_active"`
}

type VehicleResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PlateNo  string `json:"plate_no,omitempty"`
	IsActive bool   `json:"is_active"`
}
