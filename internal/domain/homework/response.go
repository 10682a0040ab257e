package homework

import (
	"encoding/json"
	"math"

	"homework_status_bot/internal/domain/failure"
)

// Response is a validated API answer.
type Response struct {
	Homeworks      []any // only the first element is consumed
	CurrentDate    int64
	HasCurrentDate bool
}

// CheckResponse validates the shape of a decoded API answer.
// An empty homeworks list is a valid "nothing reviewed yet" answer.
func CheckResponse(raw any) (Response, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return Response{}, failure.New(failure.KindFormat, "response is %T, expected an object", raw)
	}

	list, ok := body["homeworks"]
	if !ok {
		return Response{}, failure.New(failure.KindFormat, "response has no homeworks key")
	}
	homeworks, ok := list.([]any)
	if !ok {
		return Response{}, failure.New(failure.KindFormat, "homeworks is %T, expected a list", list)
	}

	resp := Response{Homeworks: homeworks}
	if value, present := body["current_date"]; present && value != nil {
		date, ok := toInt64(value)
		if !ok {
			return Response{}, failure.New(failure.KindFormat, "current_date %v is not an integer", value)
		}
		resp.CurrentDate = date
		resp.HasCurrentDate = true
	}
	return resp, nil
}

// CheckProgress fails when the answer carries neither homeworks nor
// current_date, so the poll window cannot move and nothing was reported.
func (r Response) CheckProgress() error {
	if len(r.Homeworks) == 0 && !r.HasCurrentDate {
		return failure.New(failure.KindFormat, "response has no homeworks and no current_date")
	}
	return nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
