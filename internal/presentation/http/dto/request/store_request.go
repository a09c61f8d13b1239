package request

// UpdateStoreRequest is the request body for updating the store profile
type UpdateStoreRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=255"`
	Address            string `json:"address" binding:"max=500"`
	Phone              string `json:"phone" binding:"max=50"`
	NTN                string `json:"ntn" binding:"max=50"`
	ReceiptFooter      string `json:"receipt_footer" binding:"max=255"`
	ConfirmationFooter string `json:"confirmation_footer" binding:"max=255"`
}

// DateRangeQuery holds the period filter shared by history endpoints
type DateRangeQuery struct {
	Period    string `form:"period"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// PrintJobFilterRequest represents print history filter parameters
type PrintJobFilterRequest struct {
	DateRangeQuery
	Kind string `form:"kind" binding:"omitempty,oneof=receipt bnpl_confirmation"`
}
