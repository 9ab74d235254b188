// Package logtail reads the tail of the captured backend log file.
//
// # Overview
//
// The supervisor redirects the backend's stdout and stderr into a log
// file. The main view periodically shows the last few lines of that file
// so the operator can see what the backend is doing without leaving the
// launcher.
//
// Tail reads the whole file through a fixed-size ring buffer, so memory
// stays bounded by maxLines regardless of log size. A missing file yields
// no lines and no error, since the backend may not have written anything
// yet.
package logtail
