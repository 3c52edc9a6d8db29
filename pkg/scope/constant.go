package scope

import "time"

// TokenExpirationDuration is how long issued tokens stay valid.
const TokenExpirationDuration = time.Hour * 24 * 7
