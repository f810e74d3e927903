// Package client assembles the session-keeper client runtime: configuration,
// local storages, the backend adapter, the crypto session store and the
// session lifecycle services, plus the application lifecycle signal the
// activation poller follows.
package client
