package qrcode

import (
	"encoding/json"
	"strings"

	"mallconsole/config"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	shopQRType  = "shop"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ShopID string `json:"shop_id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := config.QRCodeConfig{}
	if cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(qrCfg.ErrorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

// GenerateShopQR generates a PNG QR code for a shop's directory entry
func (s *qrcodeService) GenerateShopQR(shopID string) ([]byte, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, errors.New("shop id is required")
	}

	data := QRCodeData{
		ShopID: shopID,
		Type:   shopQRType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + shopID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShopQR parses QR code data and returns the shop ID
func (s *qrcodeService) ParseShopQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != shopQRType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ShopID == "" {
		return "", errors.New("QR code carries no shop id")
	}

	return data.ShopID, nil
}
