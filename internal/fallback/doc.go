// Package fallback turns rendering failures and capability verdicts into the
// remediation text and actions shown when the animated scene is unavailable.
package fallback
