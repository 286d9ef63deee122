// Package manager tracks translation backend lifecycles and dispatches
// translation requests.
//
// Per backend id it guarantees: at most one download in flight (delegated to
// the download coordinator), at most one load in flight, and zero or one
// resident runtime. Operations on different backend ids proceed fully in
// parallel. The manager never retries on behalf of callers and never
// downloads on the translation path.
package manager
