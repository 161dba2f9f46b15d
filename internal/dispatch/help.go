package dispatch

const helpText = `Contact book

Usage:
    command [arguments]

Available Commands:
    add <name> <phone>        Adds a new user with the specified name and phone number.
                              Example: ` + "`add John 1234567890`" + `

    change <name> <phone>     Updates the phone number of an existing user.
                              Example: ` + "`change John 0987654321`" + `

    phone <name>              Retrieves the phone numbers of the specified user.
                              Example: ` + "`phone John`" + `

    all                       Displays all users and their phone numbers.

    hello                     Greets the user and offers assistance.

    help                      Displays this help message.

    close / exit              Exits the application.
`
