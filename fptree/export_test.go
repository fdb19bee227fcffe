package fptree

// NextNodeID exposes nextNodeID to the external test package.
var NextNodeID = nextNodeID
