package dto

import "hms/models"

// InvoiceResponse là DTO cho response của hóa đơn
type InvoiceResponse struct {
	ID            uint    `json:"id"`
	InvoiceCode   string  `json:"invoiceCode"`
	BookingID     uint    `json:"bookingId"`
	BookingCode   string  `json:"bookingCode"`
	RoomCharge    float64 `json:"roomCharge"`
	ServiceCharge float64 `json:"serviceCharge"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        int     `json:"status"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToInvoiceResponse chuyển model sang DTO response
func ToInvoiceResponse(inv models.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		InvoiceCode:   inv.InvoiceCode,
		BookingID:     inv.BookingID,
		BookingCode:   inv.Booking.BookingCode,
		RoomCharge:    inv.RoomCharge,
		ServiceCharge: inv.ServiceCharge,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt.Format(DateTimeLayout),
	}
	if inv.PaymentDate != nil {
		resp.PaymentDate = inv.PaymentDate.Format(DateTimeLayout)
	}
	return resp
}

// ToInvoiceResponses chuyển danh sách model sang DTO
func ToInvoiceResponses(invoices []models.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, ToInvoiceResponse(inv))
	}
	return responses
}
