// Package domain contains the core entities and validation rules of the
// community site: public profiles and the transient registration input.
// Account identities, stored images, and profile rows are owned by external
// systems; this package only models what the application holds in memory.
package domain
