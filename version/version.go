package version

// Name for this.
const Name string = "fcp"

// Version for this.
var Version = "0.1.0"
