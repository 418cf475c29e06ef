package record_movement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

func TestRecordMovementRequest_ReferenceLimitMatchesDomain(t *testing.T) {
	ref := strings.Repeat("ж", domain.MaxReferenceLength)
	req := RecordMovementRequest{Kind: "deposit", Method: "card", Amount: "10.00", Reference: &ref}
	assert.NoError(t, validate.Struct(req))

	longer := ref + "ж"
	req.Reference = &longer
	assert.Error(t, validate.Struct(req))
}
