package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/skip2/go-qrcode"
)

const payloadKind = "bank_transfer"

//nolint:gochecknoglobals
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// transferPayload is the JSON a banking app reads from the code.
type transferPayload struct {
	Kind          string `json:"type"`
	Order         string `json:"order,omitempty"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Content       string `json:"content"`
}

type bankTransferQR struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService renders bank transfer codes as size×size PNGs. Unknown
// correction levels fall back to "M".
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}

	return &bankTransferQR{size: size, level: level}
}

func (s *bankTransferQR) GenerateBankTransferQR(info *entity.BankTransferInfo, orderNumber string) ([]byte, error) {
	if info == nil {
		return nil, errors.New("qrcode: bank transfer info is required")
	}

	payload, err := encodePayload(info, orderNumber)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(payload, s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "qrcode: encode transfer for order %s", orderNumber)
	}

	return png, nil
}

func (s *bankTransferQR) ParseBankTransferQR(payload string) (*entity.BankTransferInfo, error) {
	var p transferPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, errors.Wrap(err, "qrcode: payload is not JSON")
	}

	switch {
	case p.Kind != payloadKind:
		return nil, errors.Errorf("qrcode: unexpected payload type %q", p.Kind)
	case p.AccountNumber == "":
		return nil, errors.New("qrcode: payload has no account number")
	}

	return &entity.BankTransferInfo{
		BankName:        p.BankName,
		AccountNumber:   p.AccountNumber,
		AccountName:     p.AccountName,
		TransferContent: p.Content,
	}, nil
}

func encodePayload(info *entity.BankTransferInfo, orderNumber string) (string, error) {
	filled := info.ForOrder(orderNumber)

	raw, err := json.Marshal(transferPayload{
		Kind:          payloadKind,
		Order:         orderNumber,
		BankName:      filled.BankName,
		AccountNumber: filled.AccountNumber,
		AccountName:   filled.AccountName,
		Content:       filled.TransferContent,
	})
	if err != nil {
		return "", errors.Wrap(err, "qrcode: marshal transfer payload")
	}

	return string(raw), nil
}
