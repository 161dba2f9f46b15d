// Package domain defines the contact data model, its error taxonomy and the
// record store contract. It contains plain types and interfaces only.
package domain
