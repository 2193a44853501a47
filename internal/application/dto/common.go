package dto

// ErrorResponse cuerpo de error HTTP: un mensaje legible y un código estable.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StockErrorResponse error de ajuste rechazado: además del mensaje, devuelve la
// cantidad actual y el ajuste solicitado para diagnóstico del cliente.
type StockErrorResponse struct {
	Code            string `json:"code"`
	Message         string `json:"message"`
	CurrentQuantity int64  `json:"current_quantity"`
	RequestedDelta  int64  `json:"requested_delta"`
}
