// Command lantern is the developer toolbox for the fault and logging
// facilities: inspect the taxonomy, push test entries through the safe
// pipeline, and maintain log files.
package main
