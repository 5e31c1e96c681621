// Package validators holds the field rules shared by the domain entities:
// usernames, domain names and nameserver hostnames. The rules are usable
// directly and as go-playground/validator tags via ValidateStruct.
package validators
