// File: doc.go
// Role: Reference YAML loader for the abstract input model §6 names
// (process/event/clock/intvar/location/edge/sync/label lists), backed
// by gopkg.in/yaml.v3. This is explicitly a convenience constructor for
// tests, not "the" system parser — §1 keeps
// the textual/DSL front end out of scope as an external collaborator.
// Loading only drives tasystem.Builder, so every structural rule
// (duplicate names, unknown references, bad domains) is enforced by the
// builder itself, not re-implemented here.
package loader
