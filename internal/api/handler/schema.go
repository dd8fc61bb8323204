package handler

import "encoding/json"

// Response types owned by the transport layer. Every body carries the
// "success" flag the web client branches on.

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type bookingResponse struct {
	ID        string   `json:"id"`
	UserID    *string  `json:"user_id"`
	CarID     *string  `json:"car_id"`
	CarName   *string  `json:"car_name"`
	CarImage  *string  `json:"car_image"`
	StartDate *string  `json:"start_date"`
	EndDate   *string  `json:"end_date"`
	Location  *string  `json:"location"`
	Price     *float64 `json:"price"`
	Status    *string  `json:"status"`

	// Extra keys are emitted alongside the fields above, which win on
	// collision.
	Extra map[string]any `json:"-"`
}

func (b bookingResponse) MarshalJSON() ([]byte, error) {
	type fields bookingResponse
	known, err := json.Marshal(fields(b))
	if err != nil || len(b.Extra) == 0 {
		return known, err
	}

	var merged map[string]any
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range b.Extra {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

type listBookingsResponse struct {
	Success  bool              `json:"success"`
	Bookings []bookingResponse `json:"bookings"`
}

type profileUserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	MemberSince string `json:"memberSince"`
}

type profileResponse struct {
	Success bool                `json:"success"`
	User    profileUserResponse `json:"user"`
}
