package services

import (
	"context"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

const (
	DefaultQRSize = 256
	MaxQRSize     = 1024
)

// ReceiptQRCode renders a PNG QR code pointing at the order's receipt.
func (s *OrderService) ReceiptQRCode(ctx context.Context, actor models.Actor, id string, size int) ([]byte, error) {
	const op = "orders.ReceiptQRCode"

	order, err := s.load(ctx, op, actor, id)
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		size = DefaultQRSize
	}
	if size > MaxQRSize {
		size = MaxQRSize
	}

	png, err := qrcode.Encode(s.ReceiptURL(order.ID.Hex()), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return png, nil
}
