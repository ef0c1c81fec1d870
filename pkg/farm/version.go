package farm

// Version is the farmer-house release version.
const Version = "0.1.0"
