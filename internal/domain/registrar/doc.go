// Package registrar defines the contract between tofunames and the domain
// registrars it provisions contacts and domains with, together with the
// provider neutral request and response types exchanged over it.
package registrar
