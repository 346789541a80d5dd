package maci

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const roundQuery = `
query Round($id: String!) {
  round(id: $id) {
    id
    contractAddress
    operator
    roundTitle
    status
    circuitType
    votingStart
    votingEnd
    coordinatorPubkeyX
    coordinatorPubkeyY
  }
}`

var roundOperation = mustParseOperation("round", roundQuery)

func mustParseOperation(name string, query string) *ast.OperationDefinition {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: query})
	if err != nil {
		panic(fmt.Sprintf("invalid graphql query %s: %s", name, err))
	}

	if len(doc.Operations) != 1 {
		panic(fmt.Sprintf("graphql query %s must contain exactly one operation", name))
	}

	return doc.Operations[0]
}

// RoundInfo is the indexed state of a round
type RoundInfo struct {
	ID                 string `json:"id"`
	ContractAddress    string `json:"contractAddress"`
	Operator           string `json:"operator"`
	Title              string `json:"roundTitle"`
	Status             string `json:"status"`
	CircuitType        string `json:"circuitType"`
	VotingStart        string `json:"votingStart"`
	VotingEnd          string `json:"votingEnd"`
	CoordinatorPubKeyX string `json:"coordinatorPubkeyX"`
	CoordinatorPubKeyY string `json:"coordinatorPubkeyY"`
}

// CoordinatorPubKey returns the key votes of the round are encrypted for
func (r RoundInfo) CoordinatorPubKey() (PubKey, error) {
	x, okX := new(big.Int).SetString(r.CoordinatorPubKeyX, 10)
	y, okY := new(big.Int).SetString(r.CoordinatorPubKeyY, 10)
	if !okX || !okY {
		return PubKey{}, errorsmod.Wrapf(ErrInvalidPubKey, "round %s has no valid coordinator key", r.ContractAddress)
	}

	return PubKey{x, y}, nil
}

type graphQLRequest struct {
	OperationName string                 `json:"operationName,omitempty"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type roundResponse struct {
	Data struct {
		Round *RoundInfo `json:"round"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// IndexerClient queries the round indexer over graphql
type IndexerClient struct {
	endpoint string
	client   *http.Client
}

// NewIndexerClient returns a client for the indexer at the given graphql endpoint
func NewIndexerClient(endpoint string, client *http.Client) *IndexerClient {
	return &IndexerClient{endpoint: strings.TrimSuffix(endpoint, "/"), client: client}
}

// Round returns the indexed round deployed at contractAddress
func (c *IndexerClient) Round(ctx context.Context, contractAddress string) (RoundInfo, error) {
	req := graphQLRequest{
		OperationName: roundOperation.Name,
		Query:         roundQuery,
		Variables:     map[string]interface{}{"id": contractAddress},
	}

	var res roundResponse
	if err := postJSON(ctx, c.client, c.endpoint, req, &res); err != nil {
		return RoundInfo{}, errorsmod.Wrap(ErrIndexer, err.Error())
	}

	if len(res.Errors) > 0 {
		msgs := make([]string, len(res.Errors))
		for i, e := range res.Errors {
			msgs[i] = e.Message
		}
		return RoundInfo{}, errorsmod.Wrap(ErrIndexer, strings.Join(msgs, "; "))
	}

	if res.Data.Round == nil {
		return RoundInfo{}, errorsmod.Wrapf(ErrInvalidRound, "round %s is not indexed", contractAddress)
	}

	return *res.Data.Round, nil
}
