package adapter

import "github.com/MKhiriev/go-persona-keeper/models"

// FetchAliasesResult is either AliasesFetched or AliasesFailed.
type FetchAliasesResult interface {
	isFetchAliasesResult()
}

// AliasesFetched carries the aliases returned by the API.
type AliasesFetched struct {
	Aliases []models.Alias
}

// AliasesFailed describes a failed request. StatusCode is 0 when no HTTP
// response was received.
type AliasesFailed struct {
	Message    string
	StatusCode int
}

func (AliasesFetched) isFetchAliasesResult() {}
func (AliasesFailed) isFetchAliasesResult()  {}
