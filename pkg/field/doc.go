// Package field defines the typed placeholder model shared by every pipeline
// stage: the Field candidate record, the fixed FieldType enumeration, and the
// TemplateMetadata aggregate. Detection, classification, and reconciliation
// live elsewhere but all speak in the types defined here, mirroring how a
// consumer receives them as JSON.
package field
