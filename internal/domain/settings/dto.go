package settings

import (
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ScanRateRequest struct {
	ScanRate string `json:"scan_rate"`
}

func (r *ScanRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScanRate) {
		errs = append(errs, validator.ValidationError{Field: "scan_rate", Message: "scan_rate is required"})
	} else if _, ok := validator.IsValidRate(r.ScanRate); !ok {
		errs = append(errs, validator.ValidationError{Field: "scan_rate", Message: "scan_rate must be a non-negative decimal"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanRateResponse struct {
	ScanRate decimal.Decimal `json:"scan_rate"`
}
