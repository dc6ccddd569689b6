// Command server runs the desktop shell backend.
package main
