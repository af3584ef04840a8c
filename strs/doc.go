// Package strs solves string-processing exercises over ASCII input:
// capital-usage detection, license-key reformatting, masking of personal
// information, repeated-substring detection and repeated-string matching.
//
// Several problems have a KMP or rolling-hash variant; the prefix-function
// helper is shared between them.
//
// Errors:
//   - ErrInvalidGroupSize: LicenseKeyFormatting with k <= 0.
//   - ErrUnrecognizedPII: MaskPII input is neither an email nor a phone number.
package strs
