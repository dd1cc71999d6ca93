package swim

import "fmt"

type Kind string

const (
	KindHeartRate   Kind = "heart_rate"
	KindDistance    Kind = "distance"
	KindEnergy      Kind = "energy"
	KindStrokeCount Kind = "stroke_count"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindHeartRate, KindDistance, KindEnergy, KindStrokeCount:
		return k, nil
	default:
		return "", fmt.Errorf("invalid sample kind: %q (valid: heart_rate, distance, energy, stroke_count)", s)
	}
}

func (k Kind) String() string { return string(k) }

type AuthorizationStatus string

const (
	AuthorizationNotDetermined AuthorizationStatus = "NOT_DETERMINED"
	AuthorizationDenied        AuthorizationStatus = "DENIED"
	AuthorizationAuthorized    AuthorizationStatus = "AUTHORIZED"
)

func (s AuthorizationStatus) IsAuthorized() bool { return s == AuthorizationAuthorized }
