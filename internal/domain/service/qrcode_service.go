package service

import "storefront/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBankTransferQR encodes the transfer details for an order as a PNG QR code
	GenerateBankTransferQR(info *entity.BankTransferInfo, orderNumber string) ([]byte, error)

	// ParseBankTransferQR parses QR code payload back into transfer details
	ParseBankTransferQR(payload string) (*entity.BankTransferInfo, error)
}
