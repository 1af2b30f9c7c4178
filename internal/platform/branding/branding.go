// Package branding holds the product name shown in page titles.
package branding

// AppName is the user-facing product name.
const AppName = "uikit"
