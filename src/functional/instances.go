package functional

// Compile-time checks that every instance satisfies every contract.
var (
	_ Functor[int, string, Identity[int], Identity[string]]                                 = IdentityInstance[int, string]{}
	_ Applicative[int, string, Identity[int], Identity[func(int) string], Identity[string]] = IdentityInstance[int, string]{}
	_ Monad[int, string, Identity[int], Identity[string]]                                   = IdentityInstance[int, string]{}

	_ Functor[int, string, Maybe[int], Maybe[string]]                              = MaybeInstance[int, string]{}
	_ Applicative[int, string, Maybe[int], Maybe[func(int) string], Maybe[string]] = MaybeInstance[int, string]{}
	_ Monad[int, string, Maybe[int], Maybe[string]]                                = MaybeInstance[int, string]{}

	_ Functor[int, string, Either[int, error], Either[string, error]]                                      = EitherInstance[int, string, error]{}
	_ Applicative[int, string, Either[int, error], Either[func(int) string, error], Either[string, error]] = EitherInstance[int, string, error]{}
	_ Monad[int, string, Either[int, error], Either[string, error]]                                        = EitherInstance[int, string, error]{}
)
