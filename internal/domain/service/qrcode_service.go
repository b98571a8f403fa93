package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code pointing at a shop's directory entry
	GenerateShopQR(shopID string) ([]byte, error)

	// ParseShopQR parses QR code data and returns the shop ID
	ParseShopQR(qrData string) (string, error)
}
