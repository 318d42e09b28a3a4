package Iservices

import "evolution-connector/internal/domain/dto"

// IExecuteFunctions is what a node operation needs from the workflow host.
// Parameter errors carry "Could not get parameter" in their message.
type IExecuteFunctions interface {
	InputData() []dto.Item
	StringParameter(name string, itemIndex int) (string, error)
	BoolParameter(name string, itemIndex int, fallback bool) (bool, error)
	DecodeParameter(name string, itemIndex int, out any) error
	ContinueOnFail() bool
}
