package entities

type Stock struct {
	ProductID string
	Available bool
}
