package main

import (
	"slices"

	"github.com/dmitrymomot/strkit/pkg/b64json"
	"github.com/dmitrymomot/strkit/pkg/querystring"
	"github.com/dmitrymomot/strkit/pkg/strtemplate"
	"github.com/dmitrymomot/strkit/pkg/strutil"
)

// command runs one operation. found is false for lookups that matched nothing.
type command struct {
	usage string
	run   func(args []string) (result any, found bool, err error)
}

var commands = map[string]command{
	"param":    {usage: "<url> <name>", run: paramCommand},
	"params":   {usage: "<url>", run: paramsCommand},
	"template": {usage: "<template> [values...]", run: templateCommand},
	"id":       {usage: "[keys...]", run: idCommand},
	"urls":     {usage: "<text>", run: urlsCommand},
	"domain":   {usage: "<email>", run: domainCommand},
	"b64json":  {usage: "<data>", run: b64jsonCommand},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type valueResult struct {
	Value string `json:"value" yaml:"value"`
	Found bool   `json:"found" yaml:"found"`
}

func paramCommand(args []string) (any, bool, error) {
	if len(args) != 2 {
		return nil, false, errUsage
	}
	value, found := querystring.Parameter(args[0], args[1])
	return valueResult{Value: value, Found: found}, found, nil
}

type paramsResult struct {
	Parameters map[string]string `json:"parameters" yaml:"parameters"`
	Keys       []string          `json:"keys" yaml:"keys"`
	Found      bool              `json:"found" yaml:"found"`
}

func paramsCommand(args []string) (any, bool, error) {
	if len(args) != 1 {
		return nil, false, errUsage
	}
	params, found := querystring.Parameters(args[0])
	return paramsResult{Parameters: params, Keys: querystring.Keys(args[0]), Found: found}, found, nil
}

type textResult struct {
	Result string `json:"result" yaml:"result"`
}

func templateCommand(args []string) (any, bool, error) {
	if len(args) < 1 {
		return nil, false, errUsage
	}

	values := make([]any, len(args)-1)
	for i, v := range args[1:] {
		if v != "" {
			values[i] = v
		}
	}
	return textResult{Result: strtemplate.Build(args[0], values...)}, true, nil
}

func idCommand(args []string) (any, bool, error) {
	return textResult{Result: strutil.CombinedID(args...)}, true, nil
}

type urlsResult struct {
	URLs  []string `json:"urls" yaml:"urls"`
	Found bool     `json:"found" yaml:"found"`
}

func urlsCommand(args []string) (any, bool, error) {
	if len(args) != 1 {
		return nil, false, errUsage
	}
	urls, ok := strutil.ExtractURLs(args[0])
	found := ok && len(urls) > 0
	if urls == nil {
		urls = []string{}
	}
	return urlsResult{URLs: urls, Found: found}, found, nil
}

func domainCommand(args []string) (any, bool, error) {
	if len(args) != 1 {
		return nil, false, errUsage
	}
	domain, found := strutil.DomainFromEmail(args[0])
	return valueResult{Value: domain, Found: found}, found, nil
}

type payloadResult struct {
	Payload any `json:"payload" yaml:"payload"`
}

func b64jsonCommand(args []string) (any, bool, error) {
	if len(args) != 1 {
		return nil, false, errUsage
	}
	payload, err := b64json.Decode[any](args[0])
	if err != nil {
		return nil, false, err
	}
	return payloadResult{Payload: payload}, true, nil
}
