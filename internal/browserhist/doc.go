// Package browserhist imports download history from installed browsers.
// Chromium-family browsers record downloads in their History SQLite
// database (downloads + downloads_url_chains tables); Firefox-family
// browsers keep them as downloads/metaData annotations in
// places.sqlite. Databases are copied aside before reading so a
// running browser keeps its lock undisturbed.
package browserhist
