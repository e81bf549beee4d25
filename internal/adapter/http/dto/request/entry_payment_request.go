package request

import "encoding/json"

// EntryPaymentCreateRequest is the payload for the "cobra a entrada" route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type EntryPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
