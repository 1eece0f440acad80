package command

// Cart Commands
type AddToCart struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
}

type RemoveFromCart struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
}

type Checkout struct {
	SessionID string `json:"session_id"`
}

// Analytics Commands
type RecordProductView struct {
	ProductID string `json:"product_id"`
}
