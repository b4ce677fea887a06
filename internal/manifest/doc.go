// Package manifest handles parsing and validation of app.yaml, the manifest
// at the root of every app layer. A manifest names the app, gives its
// version, optionally names the app it overrides, and declares extensions
// whose paths do not follow the extensions/<type>/<name> convention.
package manifest
