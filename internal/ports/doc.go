// Package ports defines the seams around the state container. SyncService and
// ViewService are implemented by the application layer and driven by the view
// API; TodoClient and CategoryClient are implemented by the remote resource
// adapter and driven by the synchronizer.
package ports
